package renderer

// samlLogoutURL is the fixed logout target embedded in the header bar.
const samlLogoutURL = "https://login.microsoftonline.com/12c4861e-9d0e-4707-9b36-2d01976efcf3/saml2?SAMLRequest=fZFNS8QwEIb%2FSm85pU3T9CNhWxQWYWH1oOLBi2TzUQNtUjsp7M%2B33BURQS%2BBCe87z8y8O5DjMIlj6MMSH83HYiAm%2B%2FVxXkYXfIveY5xAZNkQeufT0ak5QLAx%2BMF5k6owZjlVrKlyg7kmBrOa1JifigpTTXJeV8YqW2Qbh6LksG%2FRW6F4ztiq5azhmJWWYkmYxZRXWhOqa8uKVQqwmIOHKH1sESW0xGvnvHkmjShqwdgrSl7MDJcpaUpQch4HD2IjtWiZvQgSHAgvRwMiKvF0e38Uq1BIADNv2%2F20TP97pjnEoMKAut2mFpfp5g4mL4ytCDWNwifFG7yeguOTrBnWtLFclyW3Zb7LfrquLR5WyGGf3IV5lPFvep7mlx%2Bnsb1IxeJhMspZZzTqpB5B%2B%2BWmH%2BRy7uewTGnw3zFtAX2xr7juWv2KvPsE"

// pageStyles is the inline stylesheet, emitted verbatim into <style>.
const pageStyles = `
    html, body {
      margin: 0;
      padding: 0;
      height: 100vh;
      font-family: Arial, sans-serif;
      background-color: #f9f9f9;
    }

    .header {
      position: fixed;
      top: 0;
      left: 0;
      right: 0;
      background-color: #ffffff;
      border-bottom: 2px solid #ccc;
      padding: 1rem 2rem;
      z-index: 1000;
      box-shadow: 0 2px 8px rgba(0,0,0,0.1);
    }

    .header-content {
      max-width: 1800px;
      margin: 0 auto;
      display: flex;
      align-items: center;
      gap: 2rem;
      flex-wrap: wrap;
    }

    .search-container {
      position: relative;
      flex: 1;
      min-width: 300px;
      max-width: 500px;
    }

    .search-box {
      padding: 10px 80px 10px 12px;
      border: 1px solid #ccc;
      border-radius: 6px;
      font-size: 14px;
      width: 100%;
      box-sizing: border-box;
    }

    .search-box:focus {
      outline: none;
      border-color: #007acc;
      box-shadow: 0 0 0 2px rgba(0, 122, 204, 0.1);
    }

    .search-hint {
      position: absolute;
      right: 12px;
      top: 50%;
      transform: translateY(-50%);
      font-size: 11px;
      color: #999;
      background: #f5f5f5;
      padding: 2px 6px;
      border-radius: 3px;
      pointer-events: none;
      transition: opacity 0.2s;
    }

    .search-box:focus + .search-hint {
      opacity: 0;
    }

    .nav-letters {
      display: flex;
      flex-wrap: wrap;
      gap: 6px;
      flex: 2;
    }

    .nav-letters a,
    .nav-letters span {
      display: inline-block;
      width: 28px;
      height: 28px;
      text-align: center;
      line-height: 28px;
      text-decoration: none;
      border-radius: 4px;
      font-weight: bold;
      font-size: 13px;
    }

    .nav-letters a {
      color: #007acc;
      background-color: #f0f0f0;
      transition: all 0.2s ease;
    }

    .nav-letters a:hover {
      background-color: #e0e0e0;
    }

    .nav-letters a.active {
      color: #ffffff;
      background-color: #007acc;
    }

    .nav-letters span {
      color: #ccc;
    }

    .logout-button {
      background-color: #007acc;
      color: white;
      border: none;
      padding: 10px 20px;
      border-radius: 6px;
      font-size: 13px;
      cursor: pointer;
      text-decoration: none;
      text-align: center;
      box-shadow: 0 2px 5px rgba(0,0,0,0.2);
      transition: background-color 0.3s ease;
      white-space: nowrap;
    }

    .logout-button:hover {
      background-color: #005fa3;
    }

    .content-area {
      margin-top: 120px;
      margin-bottom: 60px;
      padding: 2rem;
      max-width: 1800px;
      margin-left: auto;
      margin-right: auto;
    }

    section {
      margin-bottom: 3rem;
    }

    h2 {
      border-bottom: 1px solid #ccc;
      padding-bottom: 0.3rem;
      margin-top: 2rem;
      color: #333;
    }

    ul {
      column-count: 3;
      column-gap: 2rem;
      list-style: none;
      padding: 0;
    }

    li {
      margin: 0.3rem 0;
      margin-bottom: 1.3rem;
      break-inside: avoid;
    }

    .entry-link {
      font-weight: bold;
      color: #007acc;
      text-decoration: none;
      display: block;
    }

    .entry-link:hover {
      text-decoration: underline;
    }

    .entry-meta {
      font-size: 0.85em;
      color: #666;
      font-style: italic;
      margin-top: 0.2rem;
    }

    @media (max-width: 1200px) {
      ul {
        column-count: 2;
      }
    }

    @media (max-width: 768px) {
      .header-content {
        flex-direction: column;
        gap: 1rem;
      }

      .search-container {
        max-width: 100%;
      }

      .nav-letters {
        justify-content: center;
      }

      .content-area {
        margin-top: 200px;
      }

      ul {
        column-count: 1;
      }
    }

    .footer-bar {
      position: fixed;
      bottom: 0;
      left: 0;
      right: 0;
      background: #eef;
      color: #333;
      text-align: center;
      padding: 0.75rem 0;
      border-top: 1px solid #ccc;
      font-size: 0.9rem;
      z-index: 999;
      box-shadow: 0 -2px 8px rgba(0,0,0,0.1);
    }
`

// pageScript is the inline viewer script: keyboard shortcuts, scroll-spy
// letter highlighting, smooth anchor scrolling and the substring filter
// over each item's data-search-text attribute.
const pageScript = `
  document.addEventListener("DOMContentLoaded", function () {
    const navLinks = document.querySelectorAll(".nav-letters a");
    const sections = document.querySelectorAll(".content-area section");
    const searchBox = document.querySelector(".search-box");
    const allListItems = document.querySelectorAll(".content-area li");

    // Keyboard shortcuts
    document.addEventListener("keydown", function(e) {
      if ((e.ctrlKey || e.metaKey) && e.key === 'k') {
        e.preventDefault();
        searchBox.focus();
        searchBox.select();
      } else if (e.key === '/' && document.activeElement.tagName !== 'INPUT') {
        e.preventDefault();
        searchBox.focus();
      } else if (e.key === 'Escape' && document.activeElement === searchBox) {
        searchBox.value = '';
        searchBox.blur();
        applyFilters();
      }
    });

    function updateActiveLetter() {
      let closest = null;
      let minOffset = Infinity;

      sections.forEach(section => {
        const rect = section.getBoundingClientRect();
        const offset = Math.abs(rect.top - 140);
        if (rect.top >= 120 && offset < minOffset) {
          minOffset = offset;
          closest = section;
        }
      });

      if (closest) {
        const id = closest.querySelector("h2").id;
        navLinks.forEach(link => {
          link.classList.toggle("active", link.getAttribute("href") === "#" + id);
        });
      }
    }

    window.addEventListener("scroll", () => {
      window.requestAnimationFrame(updateActiveLetter);
    });

    navLinks.forEach(link => {
      link.addEventListener("click", (e) => {
        e.preventDefault();
        const targetId = link.getAttribute("href").substring(1);
        const targetSection = document.getElementById(targetId);
        if (targetSection) {
          const offsetTop = targetSection.offsetTop - 130;
          window.scrollTo({ top: offsetTop, behavior: "smooth" });
        }
      });
    });

    if (location.hash) {
      const target = document.querySelector(location.hash);
      if (target) {
        setTimeout(() => {
          const offsetTop = target.offsetTop - 130;
          window.scrollTo({ top: offsetTop, behavior: "instant" });
          updateActiveLetter();
        }, 100);
      }
    } else {
      updateActiveLetter();
    }

    searchBox.addEventListener("keyup", applyFilters);

    function applyFilters() {
      const searchTerm = searchBox.value.toLowerCase();

      allListItems.forEach(li => {
        const searchText = li.dataset.searchText.toLowerCase();
        li.style.display = searchText.includes(searchTerm) ? "block" : "none";
      });

      sections.forEach(section => {
        const visibleLinks = section.querySelectorAll("li[style='display: block;']").length;
        section.style.display = visibleLinks > 0 ? "block" : "none";
      });
    }
  });
`
